package dbmodels

// ResumeFile is the metadata row for a resume blob; the blob itself lives in
// the object store under the row id. A user references at most one live row,
// rows left behind by re-uploads stay orphaned.
type ResumeFile struct {
	BaseModel
	UserID      string `gorm:"type:varchar(64);index"`
	Name        string `gorm:"type:varchar(255)"`
	ContentType string `gorm:"type:varchar(150)"`
	Size        int64
}
