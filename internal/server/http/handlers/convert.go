package handlers

import (
	"github.com/GuiiMoreira/jobah-api/internal/domain/model"
	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
)

func toUserResponse(u *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Kind:         string(u.Kind),
		Rating:       u.Rating.Average,
		TotalReviews: u.Rating.Total,
		CreatedAt:    u.CreatedAt,
	}
}

func toServiceResponse(s model.ProviderService) dto.ServiceResponse {
	return dto.ServiceResponse{
		ID:                  s.ID,
		ProviderID:          s.ProviderID,
		Name:                s.Name,
		BasePrice:           s.BasePrice,
		AllowInstantBooking: s.AllowInstantBooking,
	}
}

func toOrderResponse(o model.Order) dto.OrderResponse {
	resp := dto.OrderResponse{
		ID:           o.ID,
		ClientID:     o.ClientID,
		ProviderID:   o.ProviderID,
		Status:       string(o.Status),
		Price:        o.Price,
		ProposedDate: o.ProposedDate,
		Note:         o.Note,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, dto.OrderItemResponse{
			ID:        item.ID,
			ServiceID: item.ServiceID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		})
	}
	return resp
}

func toOrderResponses(orders []model.Order) []dto.OrderResponse {
	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	return resp
}

func toProposalResponse(p model.Proposal) dto.ProposalResponse {
	return dto.ProposalResponse{
		ID:        p.ID,
		OrderID:   p.OrderID,
		Price:     p.Price,
		Details:   p.Details,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
	}
}

func toChangeRequestResponse(r model.ChangeRequest) dto.ChangeRequestResponse {
	return dto.ChangeRequestResponse{
		ID:            r.ID,
		OrderID:       r.OrderID,
		RequestedByID: r.RequestedByID,
		Type:          string(r.Type),
		Details:       r.Details,
		ProposedPrice: r.ProposedPrice,
		ProposedDate:  r.ProposedDate,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
		ResolvedAt:    r.ResolvedAt,
	}
}

func toReviewResponse(r model.Review) dto.ReviewResponse {
	return dto.ReviewResponse{
		ID:           r.ID,
		OrderID:      r.OrderID,
		ReviewerName: r.ReviewerName,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CreatedAt:    r.CreatedAt,
	}
}

func toNotificationResponse(n model.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Message:   n.Message,
		OrderID:   n.OrderID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func toPayoutInfoResponse(info *model.PayoutInfo) dto.PayoutInfoResponse {
	optional := func(v string) *string {
		if v == "" {
			return nil
		}
		return &v
	}
	return dto.PayoutInfoResponse{
		PayoutType:    string(info.Type),
		PixKey:        optional(info.PixKey),
		BankName:      optional(info.BankName),
		AgencyNumber:  optional(info.AgencyNumber),
		AccountNumber: optional(info.AccountNumber),
		UpdatedAt:     info.UpdatedAt,
	}
}
