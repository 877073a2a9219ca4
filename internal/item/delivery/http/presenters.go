package http

import (
	"item-service/internal/item"
	"item-service/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Name        string `json:"name"        binding:"required,max=255"`
	Description string `json:"description" binding:"max=1000"`
	Status      string `json:"status"      binding:"required,max=64"`
	Email       string `json:"email"       binding:"required,max=255"`
}

func (r createReq) toInput() item.CreateItemInput {
	return item.CreateItemInput{
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Email:       r.Email,
	}
}

// ---

type listReq struct {
	Status string `form:"status" binding:"max=64"`
	Sort   string `form:"sort"   binding:"omitempty,oneof=id -id name -name created_at -created_at"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) toInput() item.ListItemsInput {
	return item.ListItemsInput{
		Status: r.Status,
		Sort:   r.Sort,
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// ---

// updateReq has no id field: the id comes from the URI and cannot be changed.
// An absent description is kept; "" clears it.
type updateReq struct {
	ID          int64   `json:"-"`
	Name        string  `json:"name"        binding:"omitempty,max=255"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
	Status      string  `json:"status"      binding:"omitempty,max=64"`
	Email       string  `json:"email"       binding:"omitempty,max=255"`
}

func (r updateReq) toInput() item.UpdateItemInput {
	return item.UpdateItemInput{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Status:      r.Status,
		Email:       r.Email,
	}
}

// --- Response DTOs ---

type itemResp struct {
	ID          int64             `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Status      string            `json:"status"`
	Email       string            `json:"email"`
	CreatedAt   response.DateTime `json:"created_at"`
	UpdatedAt   response.DateTime `json:"updated_at"`
}

func newItemResp(it item.Item) itemResp {
	return itemResp{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Status:      it.Status,
		Email:       it.Email,
		CreatedAt:   response.DateTime(it.CreatedAt),
		UpdatedAt:   response.DateTime(it.UpdatedAt),
	}
}

func newItemResps(items []item.Item) []itemResp {
	out := make([]itemResp, len(items))
	for i, it := range items {
		out[i] = newItemResp(it)
	}
	return out
}

type createResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newCreateResp(out item.CreateItemOutput) createResp {
	return createResp{Item: newItemResp(out.Item)}
}

type listResp struct {
	Items  []itemResp `json:"items"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out item.ListItemsOutput) listResp {
	return listResp{
		Items:  newItemResps(out.Items),
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

type detailResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newDetailResp(out item.DetailItemOutput) detailResp {
	return detailResp{Item: newItemResp(out.Item)}
}

type updateResp struct {
	Item itemResp `json:"item"`
}

func (h *handler) newUpdateResp(out item.UpdateItemOutput) updateResp {
	return updateResp{Item: newItemResp(out.Item)}
}

type processResp struct {
	Items []itemResp `json:"items"`
	Count int        `json:"count"`
}

func (h *handler) newProcessResp(out item.ProcessItemsOutput) processResp {
	return processResp{Items: newItemResps(out.Items), Count: len(out.Items)}
}
