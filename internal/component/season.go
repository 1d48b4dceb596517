// internal/component/season.go
package component

import "fmt"

// SeasonKind — вид сезона. Сезон определяет, какие действия игрока доступны.
type SeasonKind int

const (
	SeasonBuild SeasonKind = iota
	SeasonHeal
	SeasonUpgrade    // объявлен, механики нет
	SeasonNeutralize // объявлен, механики нет
)

var seasonNames = map[SeasonKind]string{
	SeasonBuild:      "build",
	SeasonHeal:       "heal",
	SeasonUpgrade:    "upgrade",
	SeasonNeutralize: "neutralize",
}

func (k SeasonKind) String() string {
	if name, ok := seasonNames[k]; ok {
		return name
	}
	return fmt.Sprintf("season(%d)", int(k))
}

// AllowsBuilding — разрешена ли постановка башен и препятствий
func (k SeasonKind) AllowsBuilding() bool {
	return k == SeasonBuild
}

// AllowsHealing — разрешено ли лечение кликом
func (k SeasonKind) AllowsHealing() bool {
	return k == SeasonHeal
}

// ParseSeasonKind разбирает имя сезона из конфигурации
func ParseSeasonKind(name string) (SeasonKind, error) {
	for kind, n := range seasonNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown season kind %q", name)
}

// MarshalText / UnmarshalText позволяют задавать сезоны строками в YAML.
func (k SeasonKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *SeasonKind) UnmarshalText(text []byte) error {
	kind, err := ParseSeasonKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
