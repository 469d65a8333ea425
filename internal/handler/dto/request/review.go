package request

import "restaurant-reservation/internal/usecase/commands"

type CreateReviewRequest struct {
	Title   string `json:"title" binding:"required,max=100"`
	Comment string `json:"comment" binding:"required,max=1000"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
}

func (r *CreateReviewRequest) ToInput() commands.CreateReviewInput {
	return commands.CreateReviewInput{
		Title:   r.Title,
		Comment: r.Comment,
		Rating:  r.Rating,
	}
}

type UpdateReviewRequest struct {
	Title   *string `json:"title" binding:"omitempty,max=100"`
	Comment *string `json:"comment" binding:"omitempty,max=1000"`
	Rating  *int    `json:"rating" binding:"omitempty,min=1,max=5"`
}

func (r *UpdateReviewRequest) ToInput() commands.UpdateReviewInput {
	return commands.UpdateReviewInput{
		Title:   r.Title,
		Comment: r.Comment,
		Rating:  r.Rating,
	}
}
