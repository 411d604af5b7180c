package model

// FileTypeRow is a row of the document-type catalog.
type FileTypeRow struct {
	FileTypeID  int64  `gorm:"column:file_type_id"`
	Name        string `gorm:"column:name"`
	IsMandatory bool   `gorm:"column:is_mandatory"`
}

// UserFileRow is a row of the employee↔document link table, joined with the
// document-type catalog on reads.
type UserFileRow struct {
	UserFileID   int64  `gorm:"column:user_file_id"`
	FileTypeID   int64  `gorm:"column:file_type_id"`
	FileTypeName string `gorm:"column:file_type_name"`
	FileID       string `gorm:"column:file_id"`
	UserID       int64  `gorm:"column:user_id"`
}

// FileTypePayload is the json body of the file-type save/update procedures.
type FileTypePayload struct {
	FileType    string `json:"fileType"`
	IsMandatory bool   `json:"isMandatory"`
}

// UserFilePayload is the json body of the user-file save procedure.
type UserFilePayload struct {
	FileID     string `json:"fileId"`
	FileTypeID int64  `json:"fileTypeId"`
	UserID     int64  `json:"userId"`
}
