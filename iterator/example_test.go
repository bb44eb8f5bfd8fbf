package iterator_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/patterns/iterator"
)

func ExampleLogRepository() {
	log := `83.149.9.216 "GET /presentations/logstash-monitorama-2013/images/kibana-search.png"
83.149.9.216 "GET /presentations/logstash-monitorama-2013/images/kibana-dashboard3.png"
`
	var repo iterator.Repository[iterator.LogEntry] = iterator.NewLogRepository(strings.NewReader(log))
	it := repo.Iterator()
	for it.HasNext() {
		e, _ := it.Next()
		fmt.Println(e)
	}

	// Output:
	// LogEntry{row="83.149.9.216 \"GET /presentations/logstash-monitorama-2013/images/kibana-search.png\""}
	// LogEntry{row="83.149.9.216 \"GET /presentations/logstash-monitorama-2013/images/kibana-dashboard3.png\""}
}
