package dto

import (
	"nox/internal/domains/feedback/model"
	"nox/shared"
	gDto "nox/shared/dto"
	gModel "nox/shared/model"
	"nox/shared/timezone"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	EventID string   `json:"event_id" validate:"required,uuid"`
	Rating  int      `json:"rating"   validate:"required,min=1,max=5"`
	Comment string   `json:"comment"  validate:"omitempty,max=2000"`
	Photos  []string `json:"photos"   validate:"omitempty,max=10,dive,url"`
}

func (c *CreateFeedbackRequest) ToModel(user string) model.Feedback {
	return model.Feedback{
		ID:      uuid.NewString(),
		EventID: c.EventID,
		UserID:  user,
		Rating:  c.Rating,
		Comment: c.Comment,
		Photos:  c.Photos,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateFeedbackRequest struct {
	Rating  *int   `db:"rating"  json:"rating"  validate:"omitempty,min=1,max=5"`
	Comment string `db:"comment" json:"comment" validate:"omitempty,max=2000"`
}

type FeedbackResponse struct {
	ID      string   `json:"id"`
	EventID string   `json:"event_id"`
	UserID  string   `json:"user_id"`
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Photos  []string `json:"photos"`
	gDto.Metadata
}

func (f *FeedbackResponse) FromModel(model model.Feedback) {
	f.ID = model.ID
	f.EventID = model.EventID
	f.UserID = model.UserID
	f.Rating = model.Rating
	f.Comment = model.Comment
	f.Photos = model.Photos
	f.Metadata.FromModel(model.Metadata)
}

type GetFeedbackResponse struct {
	Feedback  []FeedbackResponse `json:"feedback"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (g *GetFeedbackResponse) FromModels(models []model.Feedback, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Feedback = make([]FeedbackResponse, len(models))
	for i, mod := range models {
		g.Feedback[i].FromModel(mod)
	}
}
