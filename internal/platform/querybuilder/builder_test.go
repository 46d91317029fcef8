package querybuilder

import "testing"

func TestSelectBuilder_ToSQL(t *testing.T) {
	t.Parallel()

	query, args, err := Select("rp.round_id", "r.round_number").
		From("round_participants rp JOIN rounds r ON r.id = rp.round_id").
		Where(
			Eq("rp.participant_id", "p-1"),
			Expr("EXTRACT(YEAR FROM r.round_date) = ?", 2024),
			IsFalse("g.own_goal"),
		).
		OrderBy("r.round_number").
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}

	want := "SELECT rp.round_id, r.round_number FROM round_participants rp JOIN rounds r ON r.id = rp.round_id" +
		" WHERE rp.participant_id = $1 AND EXTRACT(YEAR FROM r.round_date) = $2 AND g.own_goal IS FALSE" +
		" ORDER BY r.round_number"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
	if len(args) != 2 || args[0] != "p-1" || args[1] != 2024 {
		t.Fatalf("unexpected args: %v", args)
	}
}

func TestSelectBuilder_GroupByAndLimit(t *testing.T) {
	t.Parallel()

	query, _, err := Select("EXTRACT(YEAR FROM r.round_date) AS year").
		From("round_participants rp JOIN rounds r ON r.id = rp.round_id").
		Where(Eq("rp.participant_id", "p-1")).
		GroupBy("EXTRACT(YEAR FROM r.round_date)").
		OrderBy("year DESC").
		Limit(50).
		ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	want := "SELECT EXTRACT(YEAR FROM r.round_date) AS year FROM round_participants rp JOIN rounds r ON r.id = rp.round_id" +
		" WHERE rp.participant_id = $1 GROUP BY EXTRACT(YEAR FROM r.round_date) ORDER BY year DESC LIMIT 50"
	if query != want {
		t.Fatalf("query mismatch:\n got %s\nwant %s", query, want)
	}
}

func TestSelectBuilder_RequiresColumnsAndTable(t *testing.T) {
	t.Parallel()

	if _, _, err := Select().From("rounds").ToSQL(); err == nil {
		t.Fatal("expected error for missing columns")
	}
	if _, _, err := Select("id").ToSQL(); err == nil {
		t.Fatal("expected error for missing table")
	}
}

func TestIsNull(t *testing.T) {
	t.Parallel()

	query, args, err := Select("id").From("rounds").Where(IsNull("deleted_at")).ToSQL()
	if err != nil {
		t.Fatalf("ToSQL error: %v", err)
	}
	if query != "SELECT id FROM rounds WHERE deleted_at IS NULL" || len(args) != 0 {
		t.Fatalf("unexpected query %q args %v", query, args)
	}
}
