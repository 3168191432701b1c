package publish

import (
	"time"

	"github.com/feral-file/ff-catalog/internal/domain"
)

// FileUpload is a file handed in by a creator
type FileUpload struct {
	Name         string
	Content      []byte
	LastModified time.Time
}

// FileResult describes a published file.
// For text files Locator points at the enhanced metadata document, otherwise at the file itself.
type FileResult struct {
	Locator     string    `json:"locator"`
	IpfsHash    string    `json:"ipfs_hash"`
	FileHash    string    `json:"file_hash"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Preview     string    `json:"preview,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// MetadataDraft is the creator supplied description of a token about to be minted
type MetadataDraft struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Category    string `json:"category"`
	Price       string `json:"price,omitempty"`
}

// MetadataResult describes a published metadata document
type MetadataResult struct {
	Locator   string    `json:"locator"`
	IpfsHash  string    `json:"ipfs_hash"`
	Digest    string    `json:"digest"`
	Timestamp time.Time `json:"timestamp"`
}

// metadataDocument is the JSON pinned for a token
type metadataDocument struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Category    string             `json:"category,omitempty"`
	Price       string             `json:"price,omitempty"`
	Attributes  []domain.Attribute `json:"attributes"`
}
