// Package drive implements the documents provider against the Google
// Drive API. Files of the workspace folder are mapped to document
// records.
package drive
