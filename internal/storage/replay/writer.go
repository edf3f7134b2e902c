package replay

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rian010194/shadows-of-the-dungeon/internal/domain"
)

const (
	MagicHeader string = `SDRP` // 4 байта
	Version1    uint32 = 1

	// maxActions ограничивает счетчик действий при чтении: больше
	// в одну партию физически не помещается.
	maxActions int32 = 1 << 20
)

// FileHeader - представление заголовка файла в памяти. Только числа
// и массивы, поэтому binary.Write пишет его целиком.
type FileHeader struct {
	Magic       [4]byte
	Version     uint32
	Seed        int64
	Timestamp   int64
	ActionCount int32
}

// ActionHeader - заголовок каждой записи действия.
type ActionHeader struct {
	Round      int32
	ActionType uint8
	TokenLen   uint8
	PayloadLen uint16
}

// Service сохраняет и читает записи партий.
type Service struct {
	SaveDir string
}

func NewService(dir string) *Service {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.MkdirAll(dir, 0755)
	}
	return &Service{SaveDir: dir}
}

// Save пишет запись партии в файл. Сида достаточно, чтобы
// восстановить подземелье и рандом при проигрывании.
func (s *Service) Save(session *domain.ReplaySession) error {
	filename := fmt.Sprintf("replay_%s_%d.sdrp", session.SessionID, session.Timestamp)
	path := filepath.Join(s.SaveDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, session)
}

func writeBinary(w io.Writer, s *domain.ReplaySession) error {
	header := FileHeader{
		Version:     Version1,
		Seed:        s.Seed,
		Timestamp:   s.Timestamp,
		ActionCount: int32(len(s.Actions)),
	}
	copy(header.Magic[:], MagicHeader)

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, act := range s.Actions {
		tokenBytes := []byte(act.Token)
		if len(tokenBytes) > 255 {
			return fmt.Errorf("token too long: %d", len(tokenBytes))
		}
		if len(act.Payload) > 65535 {
			return fmt.Errorf("payload too long: %d", len(act.Payload))
		}

		actHeader := ActionHeader{
			Round:      int32(act.Round),
			ActionType: uint8(act.Action),
			TokenLen:   uint8(len(tokenBytes)),
			PayloadLen: uint16(len(act.Payload)),
		}
		if err := binary.Write(w, binary.LittleEndian, &actHeader); err != nil {
			return err
		}
		if _, err := w.Write(tokenBytes); err != nil {
			return err
		}
		if len(act.Payload) > 0 {
			if _, err := w.Write(act.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
