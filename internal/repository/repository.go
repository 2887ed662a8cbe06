// Package repository handles all interactions with the document store.
//
// It turns validated records into documents, stamps them and hands them to
// the store, abstracting the driver away from the service layer
package repository
