package converter

import (
	"repairshop-backend/internal/delivery/dto"
	"repairshop-backend/internal/domain/entity"
)

func BookingUpdateToResponse(update *entity.BookingUpdate) *dto.BookingUpdateResponse {
	if update == nil {
		return nil
	}

	resp := &dto.BookingUpdateResponse{
		ID:        update.ID,
		BookingID: update.BookingID.String(),
		Type:      string(update.Type),
		Content:   update.Content,
		CreatedBy: update.CreatedBy,
		IsPublic:  update.IsPublic,
		CreatedAt: update.CreatedAt,
	}

	if update.OldStatus != nil {
		old := string(*update.OldStatus)
		resp.OldStatus = &old
	}
	if update.NewStatus != nil {
		newStatus := string(*update.NewStatus)
		resp.NewStatus = &newStatus
	}

	return resp
}

func BookingUpdatesToResponses(updates []entity.BookingUpdate) []dto.BookingUpdateResponse {
	responses := make([]dto.BookingUpdateResponse, len(updates))
	for i := range updates {
		responses[i] = *BookingUpdateToResponse(&updates[i])
	}
	return responses
}
