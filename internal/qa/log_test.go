package qa

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogAppendOnly(t *testing.T) {
	l := &Log{}
	assert.Equal(t, 0, l.Count())

	f := Flag{Kind: KindMissingLanded, Sheet: "CEMENT", Supplier: "PPC", ItemCode: "CEM-001", Message: "No total or components"}
	l.Add(f)
	l.Add(f)

	assert.Equal(t, 2, l.Count(), "duplicate flags are kept, never aggregated")
	assert.Equal(t, []Flag{f, f}, l.Flags())
}

func TestWriteReport(t *testing.T) {
	l := &Log{}
	l.Add(Flag{Kind: KindTotalMismatch, Sheet: "SAND", Supplier: "LOCAL PIT", ItemCode: "SND-01", Message: "provided=20 sum=16"})
	l.Add(Flag{Kind: KindPriceLtLanded, Sheet: "SAND", Supplier: "LOCAL PIT", ItemCode: "SND-01", Message: "tier=INHOUSE price=9,\n90 landed=10"})

	path := filepath.Join(t.TempDir(), "qa_import_log.csv")
	require.NoError(t, l.WriteReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(string(data), "\n")

	require.Len(t, lines, 3)
	assert.Equal(t, "kind,sheet,supplier,itemCode,message", lines[0])
	assert.Equal(t, "TOTAL_MISMATCH,SAND,LOCAL PIT,SND-01,provided=20 sum=16", lines[1])
	assert.Equal(t, "PRICE_LT_LANDED,SAND,LOCAL PIT,SND-01,tier=INHOUSE price=9 90 landed=10", lines[2])
}

func TestWriteReportEmpty(t *testing.T) {
	l := &Log{}
	path := filepath.Join(t.TempDir(), "qa.csv")
	require.NoError(t, l.WriteReport(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "kind,sheet,supplier,itemCode,message", string(data))
}
