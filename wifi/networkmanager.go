package wifi

import (
	"context"

	"github.com/godbus/dbus/v5"
	"github.com/pkg/errors"
)

const (
	nmDest            = "org.freedesktop.NetworkManager"
	nmPath            = dbus.ObjectPath("/org/freedesktop/NetworkManager")
	nmGetDevices      = nmDest + ".GetDevices"
	nmDeviceType      = nmDest + ".Device.DeviceType"
	nmActiveAP        = nmDest + ".Device.Wireless.ActiveAccessPoint"
	nmAccessPointSSID = nmDest + ".AccessPoint.Ssid"

	// NM_DEVICE_TYPE_WIFI
	deviceTypeWifi uint32 = 2
)

var errNoActiveAccessPoint = errors.New("no wireless device with an active access point")

// networkManagerSSID asks NetworkManager on the system bus for the SSID of
// the access point the first associated wireless device is using.
func networkManagerSSID(ctx context.Context) (string, error) {
	conn, err := dbus.ConnectSystemBus(dbus.WithContext(ctx))
	if err != nil {
		return "", errors.Wrap(err, "connecting to system bus")
	}
	defer conn.Close()

	var devices []dbus.ObjectPath
	if err := conn.Object(nmDest, nmPath).CallWithContext(ctx, nmGetDevices, 0).Store(&devices); err != nil {
		return "", errors.Wrap(err, "listing NetworkManager devices")
	}

	for _, path := range devices {
		device := conn.Object(nmDest, path)

		deviceType, err := device.GetProperty(nmDeviceType)
		if err != nil {
			continue
		}
		if t, ok := deviceType.Value().(uint32); !ok || t != deviceTypeWifi {
			continue
		}

		ap, err := device.GetProperty(nmActiveAP)
		if err != nil {
			continue
		}
		apPath, ok := ap.Value().(dbus.ObjectPath)
		if !ok || apPath == "/" || !apPath.IsValid() {
			continue
		}

		ssid, err := conn.Object(nmDest, apPath).GetProperty(nmAccessPointSSID)
		if err != nil {
			continue
		}
		if raw, ok := ssid.Value().([]byte); ok && len(raw) > 0 {
			return string(raw), nil
		}
	}

	return "", errNoActiveAccessPoint
}
