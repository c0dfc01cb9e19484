package container

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/config"
)

const fixtureCSV = "type,category,personality,group,groupname,period,atomicnumber,symbol,elementname,excerpt,color\n" +
	"INTJ,Analyst,Architect,1,Strengths,1,1,Lo,Logic,Cold logic,#9DC3E6\n" +
	"INFP,Diplomat,Mediator,1,Strengths,1,1,Em,Empathy,Feels,#A9D18E\n"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "MBTI_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(fixtureCSV), 0o644))

	cfg := config.Default()
	cfg.Data.File = path
	cfg.Assets.IconDir = filepath.Join(dir, "icons")
	cfg.Assets.PairsImage = filepath.Join(dir, "pairs.png")
	cfg.Plot.Font = "Arial"
	return cfg
}

func TestNewAndVerify(t *testing.T) {
	c, err := New(testConfig(t), internal.NewNopLogger())
	require.NoError(t, err)

	catalog, err := c.Verify(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []periodic.TypeCode{"INFP", "INTJ"}, catalog)
	assert.NoError(t, c.Health(context.Background()))
	assert.Equal(t, periodic.Style{Font: "Arial", Scale: 1}, c.DefaultStyle())
	assert.NoError(t, c.Shutdown(context.Background()))
}

func TestVerifyMissingTable(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.File = filepath.Join(t.TempDir(), "absent.csv")

	c, err := New(cfg, internal.NewNopLogger())
	require.NoError(t, err)

	_, err = c.Verify(context.Background())
	assert.Error(t, err)
	assert.Error(t, c.Health(context.Background()))
}

func TestNewRejectsNilConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}
