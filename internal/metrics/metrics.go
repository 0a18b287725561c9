// Package metrics holds the prometheus collectors of the importer.
package metrics

const namespace = "blockstream_importer"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
