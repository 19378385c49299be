package dto

type StepOutput struct {
	Title       string
	Description string
}

type StatusOutput struct {
	Complete bool
	Steps    []StepOutput
}
