package classifier

import (
	"io"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"github.com/spf13/afero"
)

// sniffBufferSize covers every magic number filetype knows about.
const sniffBufferSize = 8192

// ContentCategory determines a bucket from the file's leading bytes
// instead of its extension. Unrecognized content lands in the default
// category. Used only by the content organization mode; Classify stays
// extension-only.
func ContentCategory(fs afero.Fs, path string) (string, error) {
	file, err := fs.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	buffer := make([]byte, sniffBufferSize)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", err
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil {
		return "", err
	}

	return categoryForType(kind), nil
}

func categoryForType(kind types.Type) string {
	if kind == types.Unknown {
		return DefaultCategory
	}

	switch kind.MIME.Type {
	case "image":
		return "Images"
	case "video":
		return "Videos"
	case "audio":
		return "Audio"
	}

	switch kind.Extension {
	case "pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "rtf", "odt", "ods", "odp":
		return "Documents"
	case "zip", "tar", "gz", "bz2", "rar", "7z", "xz":
		return "Archives"
	case "exe", "elf", "mach":
		return "Executables"
	case "ttf", "otf", "woff", "woff2":
		return "Fonts"
	case "epub", "mobi":
		return "Books"
	}

	return DefaultCategory
}
