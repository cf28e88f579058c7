// Package sheet opens statement workbooks and exposes their first worksheet
// as a raw 2-D grid of cell strings. It also handles password-protected
// workbook containers.
package sheet

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"moabook/cardsheet/internal/parsererror"
)

// Encrypted OOXML workbooks are wrapped in an OLE compound-file container;
// plain .xlsx files are zip archives. The container magic is enough to tell
// them apart without opening the workbook.
var cfbMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}

// IsEncrypted reports whether the buffer holds a password-protected workbook
// container.
func IsEncrypted(data []byte) bool {
	return len(data) >= len(cfbMagic) && bytes.Equal(data[:len(cfbMagic)], cfbMagic)
}

// Open decrypts (when needed) and reads the workbook, returning the raw cell
// grid of its first sheet. Passwords are supplied out-of-band by the caller;
// an encrypted workbook with an empty password fails with a typed
// PASSWORD_REQUIRED error, and a rejected password with WRONG_PASSWORD.
func Open(data []byte, filename, password string) ([][]string, error) {
	if IsEncrypted(data) && password == "" {
		return nil, &parsererror.PasswordRequiredError{FilePath: filename}
	}

	f, err := excelize.OpenReader(bytes.NewReader(data), excelize.Options{Password: password})
	if err != nil {
		if password != "" && isPasswordError(err) {
			return nil, &parsererror.WrongPasswordError{FilePath: filename, Err: err}
		}
		return nil, fmt.Errorf("opening workbook '%s': %w", filename, err)
	}
	defer func() {
		_ = f.Close()
	}()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook '%s' has no sheets", filename)
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("reading sheet '%s' of '%s': %w", sheets[0], filename, err)
	}
	return rows, nil
}

func isPasswordError(err error) bool {
	return errors.Is(err, excelize.ErrWorkbookPassword)
}
