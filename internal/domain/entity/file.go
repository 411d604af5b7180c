package entity

// FileMetadata is the document-store record describing a stored blob. The
// blob itself lives in object storage, keyed by its content hash.
type FileMetadata struct {
	FileID    string // Document-store id (ObjectID hex).
	Name      string // Original file name.
	Container string // Storage backend marker, e.g. "s3".
	SHA256    string // Content hash; also the object-storage key suffix.
}

// FileType categorizes the documents attached to an employee (contract, id
// scan...) and whether the category is mandatory.
type FileType struct {
	FileTypeID  int64
	Name        string
	IsMandatory bool
}

// UserFile links an employee to a stored document of a given type.
type UserFile struct {
	UserFileID int64
	FileTypeID int64
	FileID     string
	UserID     int64
	// Joined from lookups/metadata on reads.
	FileTypeName string
	FileName     string
	Container    string
	SHA256       string
}
