//go:generate mockgen -source=$GOFILE -destination=mock_$GOPACKAGE/mock_$GOFILE

package notification

// Notifier ユーザー宛てのイベントをライブコネクションへ配送します
type Notifier interface {
	// Notify 指定したユーザーにイベントを送信します
	//
	// ユーザーがオンラインでない場合は何もしません。
	// 配送は保証されず、失敗しても呼び出し元には伝わりません。
	Notify(targetUserID, eventName string, payload interface{})
}
