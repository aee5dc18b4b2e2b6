package model

type Category struct {
	BaseModel
	Name     string `db:"name" json:"name"`
	ParentID *int64 `db:"parent_id" json:"parentId"` // Nullable, forms the category tree
}
