package config

// Exportado solo para tests.
var (
	FromViper  = fromViper
	MergeFiles = mergeFiles
)
