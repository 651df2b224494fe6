package cli

import "ton-trivia-service/internal/domain"

// sampleCatalog provides the built-in question set; swap the loader for
// the Postgres-backed one by configuring postgres.url.
func sampleCatalog() domain.Catalog {
	return domain.Catalog{
		"general": {
			{
				Text:         "What is the capital city of France?",
				Options:      []string{"Berlin", "Madrid", "Paris", "Rome"},
				CorrectIndex: 2,
			},
			{
				Text:         "Which planet is known as the Red Planet?",
				Options:      []string{"Earth", "Mars", "Venus", "Jupiter"},
				CorrectIndex: 1,
			},
			{
				Text:         "Who wrote the play 'Romeo and Juliet'?",
				Options:      []string{"William Shakespeare", "Jane Austen", "Mark Twain", "Charles Dickens"},
				CorrectIndex: 0,
			},
			{
				Text:         "How many continents are there on Earth?",
				Options:      []string{"Five", "Six", "Seven", "Eight"},
				CorrectIndex: 2,
			},
			{
				Text:         "What gas do plants absorb from the atmosphere?",
				Options:      []string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"},
				CorrectIndex: 2,
			},
		},
		"football": {
			{
				Text:         "Which country won the FIFA World Cup in 2018?",
				Options:      []string{"Brazil", "France", "Germany", "Argentina"},
				CorrectIndex: 1,
			},
			{
				Text:         "Who is known as 'El Pibe de Oro' in football?",
				Options:      []string{"Lionel Messi", "Diego Maradona", "Cristiano Ronaldo", "Pelé"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which club does Mohamed Salah play for (as of 2024)?",
				Options:      []string{"Liverpool", "Real Madrid", "Chelsea", "Paris Saint-Germain"},
				CorrectIndex: 0,
			},
			{
				Text:         "How long is a standard football match (excluding injury time)?",
				Options:      []string{"80 minutes", "90 minutes", "100 minutes", "120 minutes"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which country has won the most UEFA Champions League titles?",
				Options:      []string{"England", "Spain", "Italy", "Germany"},
				CorrectIndex: 1,
			},
		},
		"crypto": {
			{
				Text:         "What was the first cryptocurrency ever created?",
				Options:      []string{"Ethereum", "Litecoin", "Bitcoin", "Dogecoin"},
				CorrectIndex: 2,
			},
			{
				Text:         "Who is credited as the creator of Bitcoin?",
				Options:      []string{"Vitalik Buterin", "Satoshi Nakamoto", "Charlie Lee", "Jed McCaleb"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which blockchain platform introduced smart contracts?",
				Options:      []string{"Bitcoin", "Ripple", "Ethereum", "Cardano"},
				CorrectIndex: 2,
			},
			{
				Text:         "What does NFT stand for?",
				Options:      []string{"New Finance Token", "Non-Fungible Token", "Network Fee Transaction", "Non-Financial Transaction"},
				CorrectIndex: 1,
			},
			{
				Text:         "Which consensus algorithm does Bitcoin use?",
				Options:      []string{"Proof of Stake", "Proof of Authority", "Proof of Work", "Delegated Proof of Stake"},
				CorrectIndex: 2,
			},
		},
	}
}
