package main

// Default organisms for the historical mouse/human mapping.

const (
	mouseTaxonID = "10090"
	humanTaxonID = "9606"
)

var (
	mouseChromosomes = []string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
		"11", "12", "13", "14", "15", "16", "17", "18", "19", "X", "Y",
	}
	humanChromosomes = []string{
		"1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11",
		"12", "13", "14", "15", "16", "17", "18", "19", "20", "21", "22", "X", "Y",
	}
)
