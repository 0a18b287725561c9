package model

// Node is a peer able to serve block stream files.
type Node struct {
	ID  int64
	URL string
}
