package dto

type CreateApplicationDTO struct {
	CoverLetter string `json:"cover_letter"`
}
