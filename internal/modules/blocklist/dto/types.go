package dto

type IdentifierOutput struct {
	Kind  string
	Value string
}

type ListOutput struct {
	Apps     []string
	Websites []string
}

type SeedOutput struct {
	Added    []IdentifierOutput
	Rejected []string
}
