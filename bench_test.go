package sqlbuilder

import "testing"

func BenchmarkSelect_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SelectFrom("books").
			Fields("id", "title", "price").
			SQL()
	}
}

func BenchmarkSelect_Complex(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		SelectFrom("books AS b").
			Fields("b.title", "s.total").
			LeftOuter().
			Join("shops AS s").
			On("b.id = s.book").
			AndWhere("b.price > 100").
			OrWhereEq("b.price", 0).
			AndWhereLikeLeft("b.title", "Harry Potter").
			GroupBy("b.title").
			OrderDesc("s.total").
			Limit(100).
			Offset(50).
			SQL()
	}
}

func BenchmarkInsert_MultiRow(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		InsertInto("books").
			Fields("title", "price").
			Values(Quote("In Search of Lost Time"), 150).
			Values(Quote("Don Quixote"), 200).
			SQL()
	}
}

func BenchmarkUpdate_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		UpdateTable("books").
			Set("price", "price + 10").
			AndWhere("title LIKE 'Harry Potter%'").
			SQL()
	}
}

func BenchmarkDelete_Simple(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		DeleteFrom("books").
			AndWhereGt("price", 100).
			SQL()
	}
}

func BenchmarkQuote(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Quote("Harry Potter and the Philosopher's Stone")
	}
}
