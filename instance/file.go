package instance

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/katalvlaran/hubnet/hub"
)

// ReadFile memory-maps path read-only and parses it with Read.
// Empty files are not mapped; they fail as truncated input.
func ReadFile(path string) (hub.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return hub.Instance{}, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return hub.Instance{}, err
	}
	if st.Size() == 0 {
		return Read(bytes.NewReader(nil))
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return hub.Instance{}, fmt.Errorf("mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return Read(bytes.NewReader(m))
}
