// Package notion implements the documents provider against the Notion
// API. Pages of the workspace database are mapped to document records.
package notion
