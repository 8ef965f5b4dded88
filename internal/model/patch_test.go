package model

import (
	"encoding/json"
	"testing"
)

func TestItemPatchDecodeDistinguishesAbsentFromNull(t *testing.T) {
	var patch ItemPatch
	if err := json.Unmarshal([]byte(`{"title":"renamed","due_date":null}`), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !patch.Title.Set || !patch.Title.Valid || patch.Title.Value != "renamed" {
		t.Errorf("title = %+v, want present value", patch.Title)
	}
	if !patch.DueDate.Set || patch.DueDate.Valid {
		t.Errorf("due_date = %+v, want present null", patch.DueDate)
	}
	if patch.Notes.Set {
		t.Errorf("notes = %+v, want absent", patch.Notes)
	}
	if patch.Empty() {
		t.Error("Empty() = true for a patch with two fields")
	}
}

func TestItemPatchMarshalOmitsUnsetFields(t *testing.T) {
	patch := ItemPatch{
		Title:   Some("renamed"),
		DueDate: Null[string](),
	}

	data, err := json.Marshal(patch)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var body map[string]json.RawMessage
	if err := json.Unmarshal(data, &body); err != nil {
		t.Fatalf("round trip failed: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("body = %s, want exactly the two set fields", data)
	}
	if string(body["title"]) != `"renamed"` {
		t.Errorf("title = %s", body["title"])
	}
	if string(body["due_date"]) != "null" {
		t.Errorf("due_date = %s, want explicit null", body["due_date"])
	}
	if _, ok := body["notes"]; ok {
		t.Error("unset field serialized into patch body")
	}
}

func TestItemPatchApply(t *testing.T) {
	notes := "old notes"
	due := "2024-06-15"
	item := Item{ID: "t1", Title: "original", Notes: &notes, DueDate: &due}

	patch := ItemPatch{
		Title:   Some("renamed"),
		DueDate: Null[string](),
	}
	patch.Apply(&item)

	if item.Title != "renamed" {
		t.Errorf("title = %q", item.Title)
	}
	if item.DueDate != nil {
		t.Errorf("due_date = %v, want cleared", item.DueDate)
	}
	if item.Notes == nil || *item.Notes != "old notes" {
		t.Errorf("notes = %v, want untouched", item.Notes)
	}
}

func TestProjectPatchRoundTrip(t *testing.T) {
	var patch ProjectPatch
	if err := json.Unmarshal([]byte(`{"area":"tennis","emoji":null}`), &patch); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !patch.Area.Set || patch.Area.Value != AreaTennis {
		t.Errorf("area = %+v", patch.Area)
	}
	if !patch.Emoji.Set || patch.Emoji.Valid {
		t.Errorf("emoji = %+v, want present null", patch.Emoji)
	}
	if patch.Name.Set {
		t.Errorf("name = %+v, want absent", patch.Name)
	}

	emoji := "🎾"
	project := Project{ID: "p1", Name: "Tennis", Emoji: &emoji}
	patch.Apply(&project)
	if project.Emoji != nil {
		t.Error("emoji not cleared by null patch")
	}
	if project.Area == nil || *project.Area != AreaTennis {
		t.Errorf("area = %v", project.Area)
	}
}

func TestAreaValidation(t *testing.T) {
	for _, a := range Areas() {
		if !a.Valid() {
			t.Errorf("Areas() contains invalid area %q", a)
		}
	}
	if Area("work").Valid() {
		t.Error("unknown area reported valid")
	}
	if _, err := ParseArea("rose"); err != nil {
		t.Errorf("ParseArea(rose) failed: %v", err)
	}
	if _, err := ParseArea("Rose"); err == nil {
		t.Error("ParseArea is case sensitive; Rose should fail")
	}
}

func TestValidDate(t *testing.T) {
	cases := map[string]bool{
		"2024-06-10": true,
		"2024-6-10":  false,
		"2024/06/10": false,
		"2024-13-01": false,
		"today":      false,
		"":           false,
	}
	for in, want := range cases {
		if got := ValidDate(in); got != want {
			t.Errorf("ValidDate(%q) = %v, want %v", in, got, want)
		}
	}
}
