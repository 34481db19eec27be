package bscribe

import "encoding/xml"

// Entry type attribute values.
const (
	EntryTypeUnit    = "unit"
	EntryTypeModel   = "model"
	EntryTypeUpgrade = "upgrade"
)

// Link type attribute values.
const (
	LinkTypeSelectionEntry      = "selectionEntry"
	LinkTypeSelectionEntryGroup = "selectionEntryGroup"
	LinkTypeProfile             = "profile"
	LinkTypeRule                = "rule"
)

// Catalogue is the root of one source document. Repeatable children are
// declared as slices, so an element that happens to appear zero or one
// times in a given document still reads as a collection.
type Catalogue struct {
	XMLName      xml.Name `xml:"catalogue"`
	ID           string   `xml:"id,attr"`
	Name         string   `xml:"name,attr"`
	Revision     string   `xml:"revision,attr"`
	Library      bool     `xml:"library,attr"`
	GameSystemID string   `xml:"gameSystemId,attr"`

	SelectionEntries           []*SelectionEntry      `xml:"selectionEntries>selectionEntry"`
	EntryLinks                 []*EntryLink           `xml:"entryLinks>entryLink"`
	SharedSelectionEntries     []*SelectionEntry      `xml:"sharedSelectionEntries>selectionEntry"`
	SharedSelectionEntryGroups []*SelectionEntryGroup `xml:"sharedSelectionEntryGroups>selectionEntryGroup"`
	SharedProfiles             []*Profile             `xml:"sharedProfiles>profile"`
	SharedRules                []*Rule                `xml:"sharedRules>rule"`
	Rules                      []*Rule                `xml:"rules>rule"`
	CategoryEntries            []*CategoryEntry       `xml:"categoryEntries>categoryEntry"`
}

// SelectionEntry is a named, identified node describing a selectable unit,
// model, or upgrade option.
type SelectionEntry struct {
	ID      string `xml:"id,attr"`
	Name    string `xml:"name,attr"`
	Type    string `xml:"type,attr"`
	Hidden  bool   `xml:"hidden,attr"`
	Comment string `xml:"comment"`

	Profiles             []*Profile             `xml:"profiles>profile"`
	Rules                []*Rule                `xml:"rules>rule"`
	SelectionEntries     []*SelectionEntry      `xml:"selectionEntries>selectionEntry"`
	SelectionEntryGroups []*SelectionEntryGroup `xml:"selectionEntryGroups>selectionEntryGroup"`
	EntryLinks           []*EntryLink           `xml:"entryLinks>entryLink"`
	InfoLinks            []*InfoLink            `xml:"infoLinks>infoLink"`
	CategoryLinks        []*CategoryLink        `xml:"categoryLinks>categoryLink"`
	Costs                []*Cost                `xml:"costs>cost"`
	Constraints          []*Constraint          `xml:"constraints>constraint"`
	Modifiers            []*Modifier            `xml:"modifiers>modifier"`
}

// SelectionEntryGroup is a mutually-exclusive choice set of entries.
type SelectionEntryGroup struct {
	ID               string `xml:"id,attr"`
	Name             string `xml:"name,attr"`
	Hidden           bool   `xml:"hidden,attr"`
	DefaultSelection string `xml:"defaultSelectionEntryId,attr"`

	SelectionEntries     []*SelectionEntry      `xml:"selectionEntries>selectionEntry"`
	SelectionEntryGroups []*SelectionEntryGroup `xml:"selectionEntryGroups>selectionEntryGroup"`
	EntryLinks           []*EntryLink           `xml:"entryLinks>entryLink"`
	Constraints          []*Constraint          `xml:"constraints>constraint"`
}

// EntryLink is a cross-reference to a selection entry or group defined
// elsewhere, usually in a shared pool. The target is resolved through the
// entry index.
type EntryLink struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	TargetID string `xml:"targetId,attr"`
	Type     string `xml:"type,attr"`
	Hidden   bool   `xml:"hidden,attr"`

	Costs         []*Cost         `xml:"costs>cost"`
	Constraints   []*Constraint   `xml:"constraints>constraint"`
	Modifiers     []*Modifier     `xml:"modifiers>modifier"`
	CategoryLinks []*CategoryLink `xml:"categoryLinks>categoryLink"`
}

// InfoLink is a cross-reference to a profile or rule.
type InfoLink struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	TargetID string `xml:"targetId,attr"`
	Type     string `xml:"type,attr"`
	Hidden   bool   `xml:"hidden,attr"`
}

// CategoryLink attaches a category label (role, keyword) to an entry.
type CategoryLink struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	TargetID string `xml:"targetId,attr"`
	Primary  bool   `xml:"primary,attr"`
}

// CategoryEntry declares a category label at document level.
type CategoryEntry struct {
	ID   string `xml:"id,attr"`
	Name string `xml:"name,attr"`
}

// Profile is a typed characteristic block ("Unit", "Abilities",
// "Ranged Weapons", ...) attached to an entry.
type Profile struct {
	ID       string `xml:"id,attr"`
	Name     string `xml:"name,attr"`
	TypeID   string `xml:"typeId,attr"`
	TypeName string `xml:"typeName,attr"`
	Hidden   bool   `xml:"hidden,attr"`

	Characteristics []*Characteristic `xml:"characteristics>characteristic"`
}

// Characteristic is one named value within a profile.
type Characteristic struct {
	Name   string `xml:"name,attr"`
	TypeID string `xml:"typeId,attr"`
	Value  string `xml:",chardata"`
}

// Rule is a named free-text rule block.
type Rule struct {
	ID          string `xml:"id,attr"`
	Name        string `xml:"name,attr"`
	Hidden      bool   `xml:"hidden,attr"`
	Description string `xml:"description"`
}

// Cost is a point cost attached to an entry or link.
type Cost struct {
	Name   string `xml:"name,attr"`
	TypeID string `xml:"typeId,attr"`
	Value  string `xml:"value,attr"`
}

// Constraint bounds how many times an entry may be selected.
type Constraint struct {
	ID    string `xml:"id,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
	Field string `xml:"field,attr"`
	Scope string `xml:"scope,attr"`
}

// Modifier mutates a field of its owning entry when its conditions hold.
// The pipeline only consumes cost-setting modifiers gated by selection
// counts, which encode points tiers.
type Modifier struct {
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
	Field string `xml:"field,attr"`

	Conditions []*Condition `xml:"conditions>condition"`
}

// Condition gates a modifier.
type Condition struct {
	Type    string `xml:"type,attr"`
	Value   string `xml:"value,attr"`
	Field   string `xml:"field,attr"`
	Scope   string `xml:"scope,attr"`
	ChildID string `xml:"childId,attr"`
}
