package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"

	"github.com/mistvale/go-adventure/internal/game"
	"github.com/mistvale/go-adventure/internal/storage"
)

type StorageConfig struct {
	Rooms   AssetConfig[*game.Room]       `json:"rooms"`
	Items   AssetConfig[*game.PlacedItem] `json:"items"`
	Players AssetConfig[*game.Player]     `json:"players"`
}

// defaultGridSize is the edge length of the generated world used when the
// room asset directory is empty.
const defaultGridSize = 5

// BuildWorld loads the authored rooms and item placements and assembles the
// world graph, including the swamp-direction computation. An empty room
// directory falls back to a generated grid world.
func (c *StorageConfig) BuildWorld() (*game.World, error) {
	rooms, err := c.Rooms.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating room store: %w", err)
	}
	items, err := c.Items.BuildFileStore()
	if err != nil {
		return nil, fmt.Errorf("creating item store: %w", err)
	}

	roomMap := rooms.GetAll()
	if len(roomMap) == 0 {
		roomMap = game.GenerateGrid(defaultGridSize)
	}

	w, err := game.BuildWorld(roomMap, items.GetAll())
	if err != nil {
		return nil, fmt.Errorf("assembling world: %w", err)
	}

	return w, nil
}

func (c *StorageConfig) BuildPlayerStore() (*storage.FileStore[*game.Player], error) {
	return c.Players.BuildFileStore()
}

func (c *StorageConfig) validate() error {
	el := errors.NewErrorList()
	el.Add(c.Rooms.Validate("rooms"))
	el.Add(c.Items.Validate("items"))
	el.Add(c.Players.Validate("players"))
	return el.Err()
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
