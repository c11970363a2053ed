package domain

// WriteData exposes the file assignment of a build.
type WriteData interface {
	AssetFiles() map[GUID][]string
	FileObjects() map[string][]ObjectID
}

// BundleWriteData exposes the bundle owning each file.
type BundleWriteData interface {
	WriteData
	FileBundles() map[string]string
}

// WritePlan is the output of bundle packing and the input to the writer.
// AssetToFiles lists the primary file of an asset first, then the files it
// must load before itself.
type WritePlan struct {
	AssetToFiles  map[GUID][]string     `json:"assetToFiles"`
	FileToObjects map[string][]ObjectID `json:"fileToObjects"`
	FileToBundle  map[string]string     `json:"fileToBundle"`
}

// NewWritePlan creates an empty WritePlan.
func NewWritePlan() *WritePlan {
	return &WritePlan{
		AssetToFiles:  make(map[GUID][]string),
		FileToObjects: make(map[string][]ObjectID),
		FileToBundle:  make(map[string]string),
	}
}

// AssetFiles implements WriteData.
func (w *WritePlan) AssetFiles() map[GUID][]string { return w.AssetToFiles }

// FileObjects implements WriteData.
func (w *WritePlan) FileObjects() map[string][]ObjectID { return w.FileToObjects }

// FileBundles implements BundleWriteData.
func (w *WritePlan) FileBundles() map[string]string { return w.FileToBundle }

// PrimaryFile returns the first file assigned to an asset.
func (w *WritePlan) PrimaryFile(guid GUID) (string, bool) {
	files := w.AssetToFiles[guid]
	if len(files) == 0 {
		return "", false
	}
	return files[0], true
}
