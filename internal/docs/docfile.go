package docs

// DocFile represents one loaded documentation file.
//
// A DocFile is only constructed for table entries whose file exists on disk
// at load time. Records are immutable after the load pass and live for a
// single generation run.
type DocFile struct {
	Path        string // Path relative to the docs directory (unique key)
	Title       string // Display title from the document table
	Description string // One-line description from the document table
	Content     string // Cleaned markdown body (empty when the read failed)
	Priority    int    // Ordering rank, lower sorts first
}
