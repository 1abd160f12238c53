package contact

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"gopkg.in/yaml.v3"
)

// seedFile is the YAML layout of a contact seed file.
type seedFile struct {
	Contacts []seedContact `yaml:"contacts"`
}

type seedContact struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Account     string `yaml:"account"`
	Email       string `yaml:"email"`
	Phone       string `yaml:"phone"`
	LastContact string `yaml:"last_contact"`
	Status      string `yaml:"status"`
	Owner       string `yaml:"owner"`
}

// DecodeSeed reads a YAML seed document from r.
// Unknown fields and statuses outside the enumeration are rejected.
// An empty document yields no contacts.
func DecodeSeed(r io.Reader) ([]Contact, error) {
	var sf seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("contact: parsing seed: %w", err)
	}

	contacts := make([]Contact, 0, len(sf.Contacts))
	for i, sc := range sf.Contacts {
		status, err := ParseStatus(sc.Status)
		if err != nil {
			return nil, fmt.Errorf("contact: seed entry %d (%s): %w", i+1, sc.Name, err)
		}
		contacts = append(contacts, Contact{
			Name:        sc.Name,
			Title:       sc.Title,
			Account:     sc.Account,
			Email:       sc.Email,
			Phone:       sc.Phone,
			LastContact: sc.LastContact,
			Status:      status,
			Owner:       sc.Owner,
		})
	}
	return contacts, nil
}

// LoadSeed decodes the seed file name from fsys.
func LoadSeed(fsys fs.FS, name string) ([]Contact, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("contact: opening seed %s: %w", name, err)
	}
	defer f.Close()

	contacts, err := DecodeSeed(f)
	if err != nil {
		return nil, fmt.Errorf("contact: loading seed %s: %w", name, err)
	}
	return contacts, nil
}

// Populate adds every seed contact to s in order.
func Populate(s *MemoryStore, seed []Contact) {
	for _, c := range seed {
		s.Add(c)
	}
}
