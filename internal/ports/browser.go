package ports

// LinkOpener opens an external link such as a questionnaire website or DOI
type LinkOpener interface {
	// Open launches the URL in the system's default handler
	Open(rawURL string) error
}
