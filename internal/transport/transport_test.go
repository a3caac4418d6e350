package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allbin/rtcsync"
)

func TestParseDriver(t *testing.T) {
	tests := []struct {
		name    string
		want    Driver
		wantErr bool
	}{
		{"", DriverNative, false},
		{"native", DriverNative, false},
		{"portable", DriverPortable, false},
		{"tarm", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDriver(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, rtcsync.ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOpenValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing port", Config{BaudRate: 115200}},
		{"zero baud", Config{Port: "/dev/ttyUSB0"}},
		{"negative baud", Config{Port: "/dev/ttyUSB0", BaudRate: -9600}},
		{"unknown driver", Config{Port: "/dev/ttyUSB0", BaudRate: 115200, Driver: "bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, err := Open(tt.cfg)
			assert.Nil(t, conn)
			assert.ErrorIs(t, err, rtcsync.ErrInvalidArgument)
		})
	}
}

func TestOpenNonexistentDevice(t *testing.T) {
	for _, driver := range []Driver{DriverNative, DriverPortable} {
		t.Run(string(driver), func(t *testing.T) {
			conn, err := Open(Config{
				Port:     "/dev/nonexistent_rtcsync_port",
				BaudRate: 115200,
				Driver:   driver,
			})
			assert.Nil(t, conn)
			require.Error(t, err)
			assert.ErrorIs(t, err, rtcsync.ErrConnectionFailed)
			assert.False(t, errors.Is(err, rtcsync.ErrPrivilegeRequired))
		})
	}
}

func TestMockTransport(t *testing.T) {
	m := &MockTransport{ReadData: []byte{'*'}}

	n, err := m.Write([]byte("gTIME"))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, []byte("gTIME"), m.WriteData)

	require.NoError(t, m.FlushInput())
	assert.Equal(t, 1, m.Flushed)

	buf := make([]byte, 4)
	n, err = m.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	_, err = m.Read(buf)
	assert.Error(t, err)

	require.NoError(t, m.Close())
	assert.True(t, m.Closed)
}

func TestMockTransportOverrides(t *testing.T) {
	m := &MockTransport{
		WriteN: func(p []byte) int { return 0 },
		OnWrite: func(m *MockTransport, p []byte) {
			m.ReadData = append(m.ReadData, p[0])
		},
	}

	n, err := m.Write([]byte("t1234"))
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, []byte("t"), m.ReadData)
}
