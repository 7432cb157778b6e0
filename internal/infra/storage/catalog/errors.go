package catalog

import "errors"

var (
	// ErrFacilityNotFound возвращается, когда объекта нет в справочнике
	ErrFacilityNotFound = errors.New("catalog.repository: facility not found")

	// ErrReadFile возвращается при ошибке чтения файла справочника
	ErrReadFile = errors.New("catalog.repository: failed to read catalog file")

	// ErrInvalidEntry возвращается при некорректной записи в файле справочника
	ErrInvalidEntry = errors.New("catalog.repository: invalid catalog entry")
)
