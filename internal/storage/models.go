package storage

// Note is a single note row plus its tag names. Timestamps are
// ISO-8601 strings as stored on disk; the engine never reinterprets
// them. DeletedAt is a soft marker, the row stays until a permanent
// delete.
type Note struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	DescriptionVisible bool     `json:"descriptionVisible"`
	Emoji              *string  `json:"emoji"`
	Content            string   `json:"content"`
	Tags               []string `json:"tags"`
	TagsVisible        bool     `json:"tagsVisible"`
	IsFavorite         bool     `json:"isFavorite"`
	FolderID           *string  `json:"folderId"`
	DailyNoteDate      *string  `json:"dailyNoteDate"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
	DeletedAt          *string  `json:"deletedAt"`
}

// Folder is a node in the self-referential folder tree. IsExpanded is
// pure UI state persisted alongside the content fields.
type Folder struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	ParentID           *string  `json:"parentId"`
	Description        string   `json:"description"`
	DescriptionVisible bool     `json:"descriptionVisible"`
	Color              *string  `json:"color"`
	Emoji              *string  `json:"emoji"`
	Tags               []string `json:"tags"`
	TagsVisible        bool     `json:"tagsVisible"`
	IsFavorite         bool     `json:"isFavorite"`
	IsExpanded         bool     `json:"isExpanded"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
	DeletedAt          *string  `json:"deletedAt"`
}

// Tag metadata. The name is the primary key: tags are referenced by
// name everywhere, there is no surrogate id.
type Tag struct {
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	DescriptionVisible bool    `json:"descriptionVisible"`
	IsFavorite         bool    `json:"isFavorite"`
	Color              *string `json:"color"`
	CreatedAt          string  `json:"createdAt"`
	UpdatedAt          string  `json:"updatedAt"`
	DeletedAt          *string `json:"deletedAt"`
}
