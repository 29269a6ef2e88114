package cli

// GetIndexConfig is exported for testing
var GetIndexConfig = getIndexConfig

// PrintFields is exported for testing
var PrintFields = printFields

// FireconfOptions is exported for testing
var FireconfOptions = fireconfOptions

// DatabaseID is exported for testing
var DatabaseID = databaseID
