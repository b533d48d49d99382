package catalog

import "github.com/shopspring/decimal"

// SampleDocument returns a small catalogue for local development and tests.
func SampleDocument() *Document {
	price := decimal.RequireFromString
	return &Document{
		Categories: []CategoryEntry{
			{CategoryID: 1001, Name: "Classics"},
			{CategoryID: 1002, Name: "Fantasy"},
			{CategoryID: 1003, Name: "Mystery"},
			{CategoryID: 1004, Name: "Science Fiction"},
		},
		Books: []BookEntry{
			{BookID: 1001, Title: "Pride and Prejudice", Author: "Jane Austen", Price: price("8.99"), IsPublic: true, CategoryID: 1001, IsFeatured: true, Rating: 4.7},
			{BookID: 1002, Title: "Moby Dick", Author: "Herman Melville", Price: price("10.49"), IsPublic: true, CategoryID: 1001, Rating: 3.9},
			{BookID: 1003, Title: "Middlemarch", Author: "George Eliot", Price: price("11.99"), IsPublic: false, CategoryID: 1001, Rating: 4.1},
			{BookID: 1004, Title: "The Hobbit", Author: "J. R. R. Tolkien", Price: price("12.99"), IsPublic: true, CategoryID: 1002, IsFeatured: true, Rating: 4.8},
			{BookID: 1005, Title: "A Wizard of Earthsea", Author: "Ursula K. Le Guin", Price: price("9.99"), IsPublic: true, CategoryID: 1002, Rating: 4.4},
			{BookID: 1006, Title: "The Hound of the Baskervilles", Author: "Arthur Conan Doyle", Price: price("6.50"), IsPublic: true, CategoryID: 1003, Rating: 4.3},
			{BookID: 1007, Title: "The Moonstone", Author: "Wilkie Collins", Price: price("7.25"), IsPublic: true, CategoryID: 1003, Rating: 3.8},
			{BookID: 1008, Title: "Dune", Author: "Frank Herbert", Price: price("12.99"), IsPublic: true, CategoryID: 1004, IsFeatured: true, Rating: 4.6},
			{BookID: 1009, Title: "The Left Hand of Darkness", Author: "Ursula K. Le Guin", Price: price("10.99"), IsPublic: true, CategoryID: 1004, Rating: 4.2},
			{BookID: 1010, Title: "The Time Machine", Author: "H. G. Wells", Price: price("5.99"), IsPublic: true, CategoryID: 1004, Rating: 3.9},
		},
	}
}
