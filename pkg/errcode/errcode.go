package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Configuration errors
	ConfigBoundingBoxError
	ConfigGridCellSizeError
	ConfigUncertaintyError
	ConfigWeightsError
	ConfigThresholdsError
	ConfigTiersError

	// Sources errors
	SourcesConfigError
	SourcesProviderError
	SourcesDatasetError

	// Ingest errors
	IngestOpenError
	IngestReadError
	IngestHeaderError

	// Pipeline errors
	PipelineEmptyInputError

	// Database errors
	DBConnectionError
	DBNotConnectedError
	DBTableCheckError
	DBQueryTablesError
	DBScanTableError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError

	// Export errors
	ExportCreateFileError
	ExportCSVError
	ExportJSONError
	ExportSQLiteError
	ExportCopyError
	ExportFormatError
)
