// Package mocks provides gomock implementations of the ports in internal/core.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	counter := mocks.NewMockRecordCounter(ctrl)
//	counter.EXPECT().Count(gomock.Any(), "shop_order", gomock.Any()).Return(int64(3), nil)
package mocks

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=monitor_ports_mock.go github.com/target/chroniker-go/internal/core ModelResolver,RecordCounter,JobStore,MonitorCache,MonitorMetrics
