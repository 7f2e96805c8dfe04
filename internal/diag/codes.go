package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Доковые (разбор блоков документации)
	DocInfo       Code = 1000
	DocUnknownTag Code = 1001
	DocEmptyBlock Code = 1002
	DocLooseTag   Code = 1003

	// Типовые выражения
	TypeInfo    Code = 2000
	TypeInvalid Code = 2001

	// Файловые и кэшевые
	IOInfo       Code = 4000
	IOReadError  Code = 4001
	IOWriteError Code = 4002
	IOCacheError Code = 4003

	// Проектные
	ProjectInfo          Code = 5000
	ProjectManifestError Code = 5001
	ProjectNotFound      Code = 5002
)

var codeDescription = map[Code]string{
	UnknownCode: "unknown error",

	DocInfo:       "doc info",
	DocUnknownTag: "unknown doc tag",
	DocEmptyBlock: "empty doc block",
	DocLooseTag:   "tag not at start of line",

	TypeInfo:    "type info",
	TypeInvalid: "invalid type expression",

	IOInfo:       "io info",
	IOReadError:  "cannot read file",
	IOWriteError: "cannot write file",
	IOCacheError: "cache failure",

	ProjectInfo:          "project info",
	ProjectManifestError: "malformed project manifest",
	ProjectNotFound:      "project not found",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("DOC%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("TYP%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
