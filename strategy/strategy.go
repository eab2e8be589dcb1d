// Package strategy provides the fifteen iterated-prisoner's-dilemma
// strategies of the Axelrod tournament catalogue and the factory that
// constructs them by identifier.
//
// Package strategy はアクセルロッド大会カタログの15戦略と、
// 識別子から戦略を生成するファクトリを提供します。
package strategy

import (
	"errors"
	"fmt"

	"github.com/sw965/axelrod/game"
	omwrand "github.com/sw965/omw/math/rand"
)

var ErrInvalidID = errors.New("IDエラー: カタログに存在しません")

// ID identifies one catalogue entry. Valid values are 1..15.
type ID int

const (
	TitForTatID ID = iota + 1
	TidemanChieruzziID
	NydeggerID
	GrofmanID
	ShubikID
	SteinRapoportID
	GrudgerID
	DavisID
	GraaskampID
	DowningID
	FeldID
	JossID
	TullockID
	AnonymousID
	RandomID
)

type CatalogueEntry struct {
	ID   ID
	Name string
}

// Catalogue returns the ordered (ID, name) entries of the full catalogue.
//
// Catalogueはカタログ全体の (ID, 名前) の組を順番通りに返します。
func Catalogue() []CatalogueEntry {
	return []CatalogueEntry{
		{ID: TitForTatID, Name: "TitForTat"},
		{ID: TidemanChieruzziID, Name: "TidemanChieruzzi"},
		{ID: NydeggerID, Name: "Nydegger"},
		{ID: GrofmanID, Name: "Grofman"},
		{ID: ShubikID, Name: "Shubik"},
		{ID: SteinRapoportID, Name: "SteinRapoport"},
		{ID: GrudgerID, Name: "Grudger"},
		{ID: DavisID, Name: "Davis"},
		{ID: GraaskampID, Name: "Graaskamp"},
		{ID: DowningID, Name: "Downing"},
		{ID: FeldID, Name: "Feld"},
		{ID: JossID, Name: "Joss"},
		{ID: TullockID, Name: "Tullock"},
		{ID: AnonymousID, Name: "Anonymous"},
		{ID: RandomID, Name: "Random"},
	}
}

// New constructs a fresh strategy instance in its initial state.
// Probabilistic strategies receive their own mt19937-backed generator,
// so that instances draw independently of each other.
//
// Newは初期状態の新しい戦略インスタンスを生成します。
// 確率的な戦略は、インスタンス毎に独立したmt19937ベースの生成器を持ちます。
func New(id ID) (game.Strategy, error) {
	switch id {
	case TitForTatID:
		return NewTitForTat(), nil
	case TidemanChieruzziID:
		return NewTidemanChieruzzi(), nil
	case NydeggerID:
		return NewNydegger(), nil
	case GrofmanID:
		return NewGrofman(omwrand.NewMt19937()), nil
	case ShubikID:
		return NewShubik(), nil
	case SteinRapoportID:
		return NewSteinRapoport(), nil
	case GrudgerID:
		return NewGrudger(), nil
	case DavisID:
		return NewDavis(), nil
	case GraaskampID:
		return NewGraaskamp(), nil
	case DowningID:
		return NewDowning(), nil
	case FeldID:
		return NewFeld(omwrand.NewMt19937()), nil
	case JossID:
		return NewJoss(omwrand.NewMt19937()), nil
	case TullockID:
		return NewTullock(omwrand.NewMt19937()), nil
	case AnonymousID:
		return NewAnonymous(omwrand.NewMt19937()), nil
	case RandomID:
		return NewRandom(omwrand.NewMt19937()), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, int(id))
	}
}
