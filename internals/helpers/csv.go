// file: internals/helpers/csv.go
package helper

import (
	"bytes"
	"encoding/csv"

	"github.com/gofiber/fiber/v2"
)

// utf8BOM makes Excel read the file as UTF-8.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// BuildCSV renders header + rows as comma-delimited CSV prefixed with a
// UTF-8 BOM.
func BuildCSV(header []string, rows [][]string) ([]byte, error) {
	buf := new(bytes.Buffer)
	buf.Write(utf8BOM)

	w := csv.NewWriter(buf)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// SendCSV writes the CSV as a download attachment.
func SendCSV(c *fiber.Ctx, filename string, header []string, rows [][]string) error {
	data, err := BuildCSV(header, rows)
	if err != nil {
		return JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}
