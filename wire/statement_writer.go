package wire

// StatementWriterHint values precede each entry of a WriteStatements
// sequence (spec.md §4.E, §4.G): Continue introduces one more nested
// statement, End terminates the sequence. Both the encoder and decoder
// share these constants since the framing byte is not itself a TypeHint.
const (
	StatementWriterEnd      byte = 0x00
	StatementWriterContinue byte = 0x01
)
