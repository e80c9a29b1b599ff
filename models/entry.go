package models

type FileKind string

const (
	FileKindRegular FileKind = "regular"
	FileKindArchive FileKind = "archive"
)

// FileType tells whether an entry is a standalone file or lives inside a
// container. Origin is the container link without extension.
type FileType struct {
	Kind   FileKind `json:"kind"`
	Origin string   `json:"origin,omitempty"`
}

func RegularFile() FileType {
	return FileType{Kind: FileKindRegular}
}

func ArchiveFile(origin string) FileType {
	return FileType{Kind: FileKindArchive, Origin: origin}
}

func (t FileType) IsArchive() bool {
	return t.Kind == FileKindArchive
}

type Entry struct {
	Name    string   `json:"name"`
	Type    FileType `json:"file_type"`
	Size    int64    `json:"size"`
	Created int64    `json:"created"`
}

// GroupKey is the container link for archived entries and the file name otherwise.
func (e Entry) GroupKey() string {
	if e.Type.IsArchive() {
		return e.Type.Origin
	}
	return e.Name
}
