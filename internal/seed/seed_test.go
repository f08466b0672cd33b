package seed_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"rental/internal/core/application/usecases/commands"
	"rental/internal/seed"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSeeder struct{ mock.Mock }

func (m *MockSeeder) Handle(ctx context.Context, cmd commands.SeedCategoriesCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

func writeSeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDecode(t *testing.T) {
	f, err := seed.Decode(strings.NewReader(`
categories:
  - name: "Tripods & Stands"
    description: "Camera support equipment"
  - name: Drones
`))

	require.NoError(t, err)
	require.Len(t, f.Categories, 2)
	assert.Equal(t, "Tripods & Stands", f.Categories[0].Name)
	assert.Empty(t, f.Categories[1].Description)
}

func TestDecode_UnknownField(t *testing.T) {
	_, err := seed.Decode(strings.NewReader("products: []\n"))
	assert.Error(t, err)
}

func TestCategories_RunsSeedCommand(t *testing.T) {
	seeder := new(MockSeeder)
	path := writeSeed(t, "categories:\n  - name: Camping Tents\n  - name: Coolers\n")

	seeder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SeedCategoriesCommand) bool {
		cs := cmd.Categories()
		return len(cs) == 2 && cs[0].Slug() == "camping-tents" && cs[1].Slug() == "coolers"
	})).Return(nil).Once()

	err := seed.Categories(t.Context(), path, seeder, slog.Default())

	require.NoError(t, err)
	seeder.AssertExpectations(t)
}

func TestCategories_ShippedFileIsValid(t *testing.T) {
	seeder := new(MockSeeder)
	seeder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SeedCategoriesCommand) bool {
		return len(cmd.Categories()) == 40
	})).Return(nil).Once()

	err := seed.Categories(t.Context(), filepath.Join("..", "..", "configs", "categories.yaml"), seeder, slog.Default())

	require.NoError(t, err)
	seeder.AssertExpectations(t)
}

func TestCategories_EmptyFile(t *testing.T) {
	seeder := new(MockSeeder)

	err := seed.Categories(t.Context(), writeSeed(t, ""), seeder, slog.Default())

	require.NoError(t, err)
	seeder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCategories_InvalidEntry(t *testing.T) {
	seeder := new(MockSeeder)

	err := seed.Categories(t.Context(), writeSeed(t, "categories:\n  - description: nameless\n"), seeder, slog.Default())

	require.Error(t, err)
	seeder.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestCategories_MissingFile(t *testing.T) {
	err := seed.Categories(t.Context(), filepath.Join(t.TempDir(), "absent.yaml"), new(MockSeeder), slog.Default())
	assert.Error(t, err)
}
