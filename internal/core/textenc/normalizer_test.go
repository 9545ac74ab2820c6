package textenc

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeASCIIForcesUTF8(t *testing.T) {
	res, err := New().NormalizeBytes([]byte("|0000|006|0|\r\n|C100|0|1|\r\n"))
	require.NoError(t, err)
	assert.Equal(t, Canonical, res.Encoding)
	assert.Equal(t, []string{"0000|006|0", "C100|0|1"}, res.Lines)
}

func TestNormalizeLatin1(t *testing.T) {
	// "AÇÃO" in ISO-8859-1
	src := []byte("|0150|1|A\xc7\xc3O|\n|0190|UN|UNIDADE|\n")
	res, err := New().NormalizeBytes(src)
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", res.Encoding)
	assert.Equal(t, []string{"0150|1|AÇÃO", "0190|UN|UNIDADE"}, res.Lines)
}

func TestNormalizeUTF8WithBOM(t *testing.T) {
	src := []byte("\xef\xbb\xbf|0000|AÇÃO|\n|9999|2|")
	res, err := New().NormalizeBytes(src)
	require.NoError(t, err)
	assert.Equal(t, Canonical, res.Encoding)
	assert.Equal(t, []string{"0000|AÇÃO", "9999|2"}, res.Lines)
}

func TestNormalizeUTF8AccentAfterSniffWindow(t *testing.T) {
	var b strings.Builder
	for b.Len() < 1500 {
		b.WriteString("|0150|P|JOSE DA SILVA|1058|\n")
	}
	b.WriteString("|0150|P|JOSÉ DA CONCEIÇÃO|1058|\n")

	res, err := New().NormalizeBytes([]byte(b.String()))
	require.NoError(t, err)
	assert.Equal(t, Canonical, res.Encoding)
	assert.Equal(t, "0150|P|JOSÉ DA CONCEIÇÃO|1058", res.Lines[len(res.Lines)-1])
}

func TestDetectIgnoresRuneCutAtSampleEnd(t *testing.T) {
	sample := []byte(strings.Repeat("a", SampleSize-1) + "É")[:SampleSize]
	_, name := New().Detect(sample)
	assert.Equal(t, Canonical, name)

	_, name = New().Detect([]byte("|0150|A\xc7\xc3O|"))
	assert.Equal(t, "windows-1252", name)
}

func TestNormalizeDropsUndecodableBytes(t *testing.T) {
	// The sample is plain ASCII, so UTF-8 is forced and the Latin-1 byte
	// after it cannot be decoded.
	var b strings.Builder
	for b.Len() < SampleSize+100 {
		b.WriteString("|0200|ITEM|DESCRICAO|\n")
	}
	b.WriteString("|C100|caf\xe9|\n")

	res, err := New().NormalizeBytes([]byte(b.String()))
	require.NoError(t, err)
	assert.Equal(t, Canonical, res.Encoding)
	assert.Equal(t, "C100|caf", res.Lines[len(res.Lines)-1])
}

func TestNormalizeSourceEncodingOverride(t *testing.T) {
	res, err := New(WithSourceEncoding("iso-8859-1")).NormalizeBytes([]byte("|0000|ok|\n"))
	require.NoError(t, err)
	assert.Equal(t, "windows-1252", res.Encoding)
	assert.Equal(t, []string{"0000|ok"}, res.Lines)
}

func TestNormalizeStripsRepeatedFraming(t *testing.T) {
	res, err := New().NormalizeBytes([]byte("||C170|1|ITEM|||\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"C170|1|ITEM"}, res.Lines)
}

func TestNormalizeLongLine(t *testing.T) {
	long := strings.Repeat("x", 200000)
	res, err := New().NormalizeBytes([]byte("|C100|" + long + "|\n"))
	require.NoError(t, err)
	require.Len(t, res.Lines, 1)
	assert.Equal(t, "C100|"+long, res.Lines[0])
}

func TestNormalizeIsIdempotent(t *testing.T) {
	src := "|0000|006|0|EMPRESA AÇÃO|\n|C100|0|1||\n|9999|3|\n"
	n := New()

	first, err := n.NormalizeBytes([]byte(src))
	require.NoError(t, err)

	second, err := n.NormalizeBytes([]byte(strings.Join(first.Lines, "\n")))
	require.NoError(t, err)
	assert.Equal(t, first.Lines, second.Lines)
	assert.Equal(t, Canonical, second.Encoding)
}

func TestEncode(t *testing.T) {
	out, err := Encode("AÇÃO", "")
	require.NoError(t, err)
	assert.Equal(t, []byte("AÇÃO"), out)

	out, err = Encode("AÇÃO", "iso-8859-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("A\xc7\xc3O"), out)

	_, err = Encode("x", "no-such-encoding")
	assert.Error(t, err)
}
