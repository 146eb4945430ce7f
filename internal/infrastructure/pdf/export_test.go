package pdf

// Exportado solo para tests.
var FormatThousands = formatThousands
