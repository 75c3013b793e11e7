package models

// Workspace represents a Grist workspace and the documents it holds.
type Workspace struct {
	// ID is the numeric workspace id.
	ID int `json:"id"`
	// Name is the workspace display name.
	Name string `json:"name"`
	// Docs lists documents in the workspace (may be empty when not fetched).
	Docs []Document `json:"docs,omitempty"`
}

// Document represents a Grist document.
type Document struct {
	// ID is the document id used in /docs/{id} paths.
	ID string `json:"id"`
	// Name is the document display name.
	Name string `json:"name"`
}
