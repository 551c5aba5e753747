package model

import "shareit/shared/model"

const (
	TableName  = "comments"
	EntityName = "comment"

	FieldID       = "id"
	FieldText     = "text"
	FieldItemID   = "item_id"
	FieldAuthorID = "author_id"
)

type Comment struct {
	ID         int64  `db:"id"`
	Text       string `db:"text"`
	ItemID     int64  `db:"item_id"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `column:"name" db:"author_name" table:"users"`
	model.Metadata
}

func (Comment) GetJoinQuery() string {
	return "JOIN users ON users.id = comments.author_id"
}
