// Package connectors groups the source provider implementations.
// Each subpackage knows how to fetch raw records from one external
// service (GitHub, Notion, Google Drive) and maps them onto the driven
// provider ports.
package connectors
