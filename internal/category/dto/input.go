package dto

type CreateCategoryInput struct {
	Name     string `json:"name" validate:"min=1,max=100"`
	ParentID *int64 `json:"parentId" validate:"omitempty,gt=0"`
}
