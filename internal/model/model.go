// Package model holds the records the website submits, the fixed
// service catalog and the response payloads of the API.
package model
