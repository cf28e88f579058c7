package sheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"moabook/cardsheet/internal/parsererror"
)

func workbookBytes(t *testing.T, password string) []byte {
	t.Helper()

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"이용일", "이용가맹점", "결제원금"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"2025-03-02", "스타벅스", "4500"}))

	var buf bytes.Buffer
	var err error
	if password != "" {
		err = f.Write(&buf, excelize.Options{Password: password})
	} else {
		err = f.Write(&buf)
	}
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return buf.Bytes()
}

func TestIsEncrypted(t *testing.T) {
	t.Run("ole container magic", func(t *testing.T) {
		data := []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1, 0x00}
		assert.True(t, IsEncrypted(data))
	})

	t.Run("plain zip archive", func(t *testing.T) {
		assert.False(t, IsEncrypted([]byte("PK\x03\x04rest")))
	})

	t.Run("short buffer", func(t *testing.T) {
		assert.False(t, IsEncrypted([]byte{0xD0, 0xCF}))
	})

	t.Run("real workbooks", func(t *testing.T) {
		assert.False(t, IsEncrypted(workbookBytes(t, "")))
		assert.True(t, IsEncrypted(workbookBytes(t, "secret")))
	})
}

func TestOpenPlainWorkbook(t *testing.T) {
	grid, err := Open(workbookBytes(t, ""), "data.xlsx", "")
	require.NoError(t, err)
	require.Len(t, grid, 2)
	assert.Equal(t, []string{"이용일", "이용가맹점", "결제원금"}, grid[0])
	assert.Equal(t, "스타벅스", grid[1][1])
}

func TestOpenEncryptedWorkbook(t *testing.T) {
	data := workbookBytes(t, "secret")

	t.Run("correct password", func(t *testing.T) {
		grid, err := Open(data, "data.xlsx", "secret")
		require.NoError(t, err)
		require.NotEmpty(t, grid)
		assert.Equal(t, "이용일", grid[0][0])
	})

	t.Run("missing password", func(t *testing.T) {
		_, err := Open(data, "data.xlsx", "")
		var passwordRequired *parsererror.PasswordRequiredError
		require.ErrorAs(t, err, &passwordRequired)
		assert.Equal(t, parsererror.KindPasswordRequired, parsererror.KindOf(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := Open(data, "data.xlsx", "not-it")
		var wrongPassword *parsererror.WrongPasswordError
		require.ErrorAs(t, err, &wrongPassword)
		assert.Equal(t, parsererror.KindWrongPassword, parsererror.KindOf(err))
	})
}

func TestOpenGarbageBytes(t *testing.T) {
	_, err := Open([]byte("not a workbook"), "data.xlsx", "")
	require.Error(t, err)
	assert.Equal(t, parsererror.Kind(""), parsererror.KindOf(err))
}
