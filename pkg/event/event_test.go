package event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFireReachesListenersInOrder(t *testing.T) {
	const name = "test.fired"
	t.Cleanup(func() { Flush(name) })

	var got []string
	Listen(name, func(_ context.Context, p any) { got = append(got, "a:"+p.(Transition).To) })
	Listen(name, func(_ context.Context, p any) { got = append(got, "b:"+p.(Transition).To) })

	Fire(context.Background(), name, Transition{Entity: "order", ID: 1, To: "Approved"})
	Fire(context.Background(), "test.other", Transition{To: "ignored"})

	assert.Equal(t, []string{"a:Approved", "b:Approved"}, got)

	Flush(name)
	Fire(context.Background(), name, Transition{To: "Rejected"})
	assert.Len(t, got, 2)
}
